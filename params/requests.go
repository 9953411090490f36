package params

import "github.com/kova98/redditmcp/enums"

// Style carries the output kind and verbosity a single call renders with.
// Defaults come from the process configuration; a request may override both.
type Style struct {
	Output    enums.OutputKind
	Verbosity enums.Verbosity
}

type SearchRequest struct {
	Query     string
	Subreddit string // empty means site-wide
	Sort      enums.SearchSort
	Time      enums.TimeWindow
	Limit     int
	Style     Style
}

type PostRequest struct {
	ID           string
	CommentLimit int
	CommentDepth int
	Style        Style
}

type TrendingRequest struct {
	Subreddit string
	Time      enums.TimeWindow
	Limit     int
	Style     Style
}

// ParseSearch validates raw reddit_search arguments.
func ParseSearch(args map[string]any, defaults Style) (SearchRequest, error) {
	var req SearchRequest
	var err error

	if req.Query, err = NormalizeQuery(stringArg(args, "query")); err != nil {
		return SearchRequest{}, err
	}
	if raw := stringArg(args, "subreddit"); raw != "" {
		if req.Subreddit, err = NormalizeSubreddit(raw); err != nil {
			return SearchRequest{}, err
		}
	}

	sort, err := enumArg(args, "sort", enums.SearchSorts(), string(enums.SortRelevance))
	if err != nil {
		return SearchRequest{}, err
	}
	req.Sort = enums.SearchSort(sort)

	window, err := enumArg(args, "time", enums.TimeWindows(), string(enums.TimeAll))
	if err != nil {
		return SearchRequest{}, err
	}
	req.Time = enums.TimeWindow(window)

	req.Limit = ClampInt(args["limit"], SearchLimitDefault, SearchLimitMin, SearchLimitMax)

	if req.Style, err = parseStyle(args, defaults); err != nil {
		return SearchRequest{}, err
	}
	return req, nil
}

// ParsePost validates raw reddit_post arguments.
func ParsePost(args map[string]any, defaults Style) (PostRequest, error) {
	var req PostRequest
	var err error

	if req.ID, err = NormalizePostID(stringArg(args, "post_id")); err != nil {
		return PostRequest{}, err
	}
	req.CommentLimit = ClampInt(args["comment_limit"], CommentLimitDefault, CommentLimitMin, CommentLimitMax)
	req.CommentDepth = ClampInt(args["comment_depth"], CommentDepthDefault, CommentDepthMin, CommentDepthMax)

	if req.Style, err = parseStyle(args, defaults); err != nil {
		return PostRequest{}, err
	}
	return req, nil
}

// ParseTrending validates raw reddit_trending arguments.
func ParseTrending(args map[string]any, defaults Style) (TrendingRequest, error) {
	var req TrendingRequest
	var err error

	if req.Subreddit, err = NormalizeSubreddit(stringArg(args, "subreddit")); err != nil {
		return TrendingRequest{}, err
	}

	window, err := enumArg(args, "time", enums.TimeWindows(), string(enums.TimeDay))
	if err != nil {
		return TrendingRequest{}, err
	}
	req.Time = enums.TimeWindow(window)

	req.Limit = ClampInt(args["limit"], TrendingLimitDefault, TrendingLimitMin, TrendingLimitMax)

	if req.Style, err = parseStyle(args, defaults); err != nil {
		return TrendingRequest{}, err
	}
	return req, nil
}

func parseStyle(args map[string]any, defaults Style) (Style, error) {
	output, err := enumArg(args, "output", enums.OutputKinds(), string(defaults.Output))
	if err != nil {
		return Style{}, err
	}
	verbosity, err := enumArg(args, "verbosity", enums.Verbosities(), string(defaults.Verbosity))
	if err != nil {
		return Style{}, err
	}
	return Style{
		Output:    enums.OutputKind(output),
		Verbosity: enums.Verbosity(verbosity),
	}, nil
}
