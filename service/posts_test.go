package service

import (
	"mime/multipart"
	"strings"
)

func (s *ServiceTestSuite) TestCreatePost() {
	s.Run("should render the body and derive an excerpt", func() {
		post, err := s.service.CreatePost(s.ctx, "Hello", "# Title\n\nSome *text*", "")

		s.Require().NoError(err)
		s.NotZero(post.ID)
		s.Contains(post.BodyHTML, "<h1>Title</h1>")
		s.Contains(post.BodyHTML, "<em>text</em>")
		s.Equal("Title Some text", post.Excerpt)
	})

	s.Run("should not render raw html", func() {
		post, err := s.service.CreatePost(s.ctx, "Hello", "hi <script>alert(1)</script>\n\n<img src=x onerror=alert(1)>", "")

		s.Require().NoError(err)
		s.NotContains(post.BodyHTML, "<script")
		s.NotContains(post.BodyHTML, "onerror")
	})

	s.Run("should keep a supplied excerpt", func() {
		post, err := s.service.CreatePost(s.ctx, "Hello", "body", "custom")

		s.Require().NoError(err)
		s.Equal("custom", post.Excerpt)
	})

	s.Run("should truncate a long derived excerpt", func() {
		post, err := s.service.CreatePost(s.ctx, "Hello", strings.Repeat("word ", 100), "")

		s.Require().NoError(err)
		s.True(strings.HasSuffix(post.Excerpt, "..."))
		s.LessOrEqual(len([]rune(post.Excerpt)), 203)
	})

	s.Run("should reject a missing title and body", func() {
		_, err := s.service.CreatePost(s.ctx, "", "", "")

		errs := s.validationErrors(err)
		s.Contains(errs, "title")
		s.Contains(errs, "content")
	})
}

func (s *ServiceTestSuite) TestUpdatePost() {
	s.Run("should change only the supplied fields", func() {
		created, err := s.service.CreatePost(s.ctx, "Hello", "body", "custom")
		s.Require().NoError(err)
		title := "Goodbye"

		updated, err := s.service.UpdatePost(s.ctx, created.ID, &title, nil, nil)

		s.Require().NoError(err)
		s.Equal("Goodbye", updated.Title)
		s.Equal("body", updated.Body)
		s.Equal("custom", updated.Excerpt)
		s.Greater(updated.Version, created.Version)
	})

	s.Run("should re-render a new body", func() {
		created, err := s.service.CreatePost(s.ctx, "Hello", "old", "")
		s.Require().NoError(err)
		body := "**new**"

		updated, err := s.service.UpdatePost(s.ctx, created.ID, nil, &body, nil)

		s.Require().NoError(err)
		s.Contains(updated.BodyHTML, "<strong>new</strong>")
		s.Equal("new", updated.Excerpt)
	})

	s.Run("should return not found for a missing post", func() {
		title := "x"
		_, err := s.service.UpdatePost(s.ctx, 404, &title, nil, nil)

		s.ErrorIs(err, ErrRecordNotFound)
	})
}

func (s *ServiceTestSuite) TestDeletePost() {
	s.Run("should delete a post once", func() {
		postID := s.createPost()

		s.Require().NoError(s.service.DeletePost(s.ctx, postID))
		s.ErrorIs(s.service.DeletePost(s.ctx, postID), ErrRecordNotFound)
		_, err := s.service.GetPost(s.ctx, postID)
		s.ErrorIs(err, ErrRecordNotFound)
	})
}

func (s *ServiceTestSuite) TestUpdatePostCover() {
	s.Run("should fail when object storage is not configured", func() {
		postID := s.createPost()

		_, err := s.service.UpdatePostCover(s.ctx, postID, nil, &multipart.FileHeader{Filename: "cover.png", Size: 10})

		s.ErrorIs(err, errStorageNotConfigured)
	})
}
