// Package models holds the records persisted by the server.
package models

import "time"

// Blog is a published post. Optional fields are nil when the author did not
// supply them and are then left out of JSON output.
type Blog struct {
	ID          string    `bson:"-" json:"_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	BlogImage   *string   `bson:"blog_image,omitempty" json:"blog_image,omitempty"`
	AuthorName  string    `bson:"author_name" json:"author_name"`
	PublishDate *string   `bson:"publish_date,omitempty" json:"publish_date,omitempty"`
	TotalLikes  *float64  `bson:"total_likes,omitempty" json:"total_likes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
