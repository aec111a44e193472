package meta

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type accountsResponse struct {
	Data []page `json:"data"`
}

type page struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	AccessToken string `json:"access_token"`
}

type insightsResponse struct {
	Data []insight `json:"data"`
}

type insight struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []insightValue `json:"values"`
}

type insightValue struct {
	Value   jsoniter.RawMessage `json:"value"`
	EndTime string              `json:"end_time"`
}

type meResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type pageTokenResponse struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token"`
}

type postResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id"`
}
