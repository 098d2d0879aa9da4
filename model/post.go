package model

// Post is a piece of content written by a user. A user owns any number of
// posts; posts are removed together with their owner.
type Post struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserId  string `json:"userId"`
}
