package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/client/client"
	"github.com/dmitrijs2005/blogapi/internal/common"
)

var getMultiline = GetMultiline

// Post prompts for the fields of a new blog post and submits it. Empty
// answers to the optional prompts leave those fields out.
func (a *App) Post(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}

	description, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	author, err := getSimpleText(a.reader, "Author name", a.out)
	if err != nil {
		return err
	}

	image, err := getSimpleText(a.reader, "Image URL (optional)", a.out)
	if err != nil {
		return err
	}

	publishDate, err := getSimpleText(a.reader, "Publish date (optional)", a.out)
	if err != nil {
		return err
	}

	likesText, err := getSimpleText(a.reader, "Total likes (optional)", a.out)
	if err != nil {
		return err
	}

	blog := client.NewBlog{Title: title, Description: description, AuthorName: author}
	if image != "" {
		blog.BlogImage = &image
	}
	if publishDate != "" {
		blog.PublishDate = &publishDate
	}
	if likesText != "" {
		likes, err := strconv.ParseFloat(likesText, 64)
		if err != nil {
			return fmt.Errorf("total likes must be a number: %w", err)
		}
		blog.TotalLikes = &likes
	}

	created, err := a.blogService.Create(ctx, blog)
	if err != nil {
		return err
	}

	printlnFn("Blog created with id", created.ID)
	return nil
}

// List prints every blog post, one per line.
func (a *App) List(ctx context.Context) error {
	blogs, err := a.blogService.List(ctx)
	if err != nil {
		return err
	}

	if len(blogs) == 0 {
		printlnFn("No blogs yet")
		return nil
	}

	for _, b := range blogs {
		printlnFn(formatBlog(b))
	}
	return nil
}

func formatBlog(b client.Blog) string {
	s := fmt.Sprintf("%s  %q by %s  (%s)", b.ID, b.Title, b.AuthorName, b.CreatedAt.Local().Format(time.DateTime))
	if b.TotalLikes != nil {
		s += fmt.Sprintf("  likes: %g", *b.TotalLikes)
	}
	return s
}

// describeError turns known errors into short user-facing text.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return "a user with this email already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, common.ErrMissingRequiredField):
		return "title, description and author are required"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	default:
		return err.Error()
	}
}
