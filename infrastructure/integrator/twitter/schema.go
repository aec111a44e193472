package twitter

type userResponse struct {
	Data user `json:"data"`
}

type user struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Username      string      `json:"username"`
	PublicMetrics userMetrics `json:"public_metrics"`
}

type userMetrics struct {
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	TweetCount     int64 `json:"tweet_count"`
}

type timelineResponse struct {
	Data []tweet      `json:"data"`
	Meta timelineMeta `json:"meta"`
}

type timelineMeta struct {
	ResultCount int    `json:"result_count"`
	NextToken   string `json:"next_token"`
}

type tweet struct {
	ID            string       `json:"id"`
	Text          string       `json:"text"`
	CreatedAt     string       `json:"created_at"`
	PublicMetrics tweetMetrics `json:"public_metrics"`
}

type tweetMetrics struct {
	RetweetCount    int64 `json:"retweet_count"`
	ReplyCount      int64 `json:"reply_count"`
	LikeCount       int64 `json:"like_count"`
	QuoteCount      int64 `json:"quote_count"`
	ImpressionCount int64 `json:"impression_count"`
}

type createTweetRequest struct {
	Text string `json:"text"`
}

type createTweetResponse struct {
	Data struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}
