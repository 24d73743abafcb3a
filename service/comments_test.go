package service

import (
	"errors"
	"strings"

	"github.com/emzola/scribe/data"
)

func (s *ServiceTestSuite) TestCreateComment() {
	s.Run("should create a top-level comment with the author resolved", func() {
		userID := s.registerUser("Ada Lovelace", "ada@example.com")
		postID := s.createPost()

		comment, err := s.service.CreateComment(s.ctx, userID, postID, "  first!  ", nil)

		s.Require().NoError(err)
		s.NotZero(comment.ID)
		s.Equal("first!", comment.Content)
		s.Equal(postID, comment.PostID)
		s.Equal(userID, comment.AuthorID)
		s.Nil(comment.ParentID)
		s.False(comment.IsEdited)
		s.False(comment.CreatedAt.IsZero())
		s.Require().NotNil(comment.Author)
		s.Equal(data.Identity{ID: userID, Name: "Ada Lovelace", Email: "ada@example.com"}, *comment.Author)
	})

	s.Run("should accept content at the length limit", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()

		comment, err := s.service.CreateComment(s.ctx, userID, postID, strings.Repeat("ä", 1000), nil)

		s.Require().NoError(err)
		s.Len([]rune(comment.Content), 1000)
	})

	s.Run("should store markup-like content as written", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()

		for _, content := range []string{"if a<b and c>d then", "write &amp; in html", "use the <div> tag"} {
			comment, err := s.service.CreateComment(s.ctx, userID, postID, content, nil)

			s.Require().NoError(err)
			s.Equal(content, comment.Content)
			stored, err := s.service.GetComment(s.ctx, comment.ID)
			s.Require().NoError(err)
			s.Equal(content, stored.Content)
		}
	})

	s.Run("should reject invalid content without creating a record", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()

		for _, content := range []string{"", "   ", strings.Repeat("x", 1001)} {
			_, err := s.service.CreateComment(s.ctx, userID, postID, content, nil)
			s.Contains(s.validationErrors(err), "content")
		}
		s.Empty(s.repo.Comments())
	})

	s.Run("should return not found when the post does not exist", func() {
		userID := s.registerUser("", "ada@example.com")

		_, err := s.service.CreateComment(s.ctx, userID, 404, "hello", nil)

		s.ErrorIs(err, ErrRecordNotFound)
		s.Empty(s.repo.Comments())
	})

	s.Run("should accept a parent comment that does not exist", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()
		parentID := int64(9999)

		comment, err := s.service.CreateComment(s.ctx, userID, postID, "reply", &parentID)

		s.Require().NoError(err)
		s.Require().NotNil(comment.ParentID)
		s.Equal(parentID, *comment.ParentID)
	})
}

func (s *ServiceTestSuite) TestUpdateComment() {
	s.Run("should update content and mark the comment as edited", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()
		created := s.createComment(userID, postID, "first", nil)

		updated, err := s.service.UpdateComment(s.ctx, userID, created.ID, "second")
		s.Require().NoError(err)
		s.Equal("second", updated.Content)
		s.True(updated.IsEdited)
		s.Equal(created.CreatedAt, updated.CreatedAt)
		s.Require().NotNil(updated.Author)
		s.Equal(userID, updated.Author.ID)

		again, err := s.service.UpdateComment(s.ctx, userID, created.ID, "third")
		s.Require().NoError(err)
		s.True(again.IsEdited)

		stored, err := s.service.GetComment(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal("third", stored.Content)
		s.True(stored.IsEdited)
	})

	s.Run("should forbid a caller who is not the author", func() {
		authorID := s.registerUser("", "ada@example.com")
		otherID := s.registerUser("", "bob@example.com")
		postID := s.createPost()
		created := s.createComment(authorID, postID, "first", nil)

		_, err := s.service.UpdateComment(s.ctx, otherID, created.ID, "hijacked")

		s.ErrorIs(err, ErrNotPermitted)
		stored, err := s.service.GetComment(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal("first", stored.Content)
		s.False(stored.IsEdited)
	})

	s.Run("should return not found for a missing comment", func() {
		userID := s.registerUser("", "ada@example.com")

		_, err := s.service.UpdateComment(s.ctx, userID, 42, "hello")

		s.ErrorIs(err, ErrRecordNotFound)
	})

	s.Run("should reject invalid content", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()
		created := s.createComment(userID, postID, "first", nil)

		_, err := s.service.UpdateComment(s.ctx, userID, created.ID, strings.Repeat("x", 1001))

		s.Contains(s.validationErrors(err), "content")
		stored, err := s.service.GetComment(s.ctx, created.ID)
		s.Require().NoError(err)
		s.False(stored.IsEdited)
	})
}

func (s *ServiceTestSuite) TestDeleteComment() {
	s.Run("should delete the comment and its direct replies only", func() {
		userID := s.registerUser("", "ada@example.com")
		otherID := s.registerUser("", "bob@example.com")
		postID := s.createPost()
		c1 := s.createComment(userID, postID, "c1", nil)
		r1 := s.createComment(otherID, postID, "r1", &c1.ID)
		s.createComment(otherID, postID, "r2", &c1.ID)
		r3 := s.createComment(userID, postID, "r3", &r1.ID)
		c2 := s.createComment(userID, postID, "c2", nil)

		err := s.service.DeleteComment(s.ctx, userID, c1.ID)

		s.Require().NoError(err)
		var remaining []int64
		for _, comment := range s.repo.Comments() {
			remaining = append(remaining, comment.ID)
		}
		s.Equal([]int64{r3.ID, c2.ID}, remaining)
	})

	s.Run("should forbid a caller who is not the author", func() {
		authorID := s.registerUser("", "ada@example.com")
		otherID := s.registerUser("", "bob@example.com")
		postID := s.createPost()
		c1 := s.createComment(authorID, postID, "c1", nil)
		s.createComment(otherID, postID, "r1", &c1.ID)

		err := s.service.DeleteComment(s.ctx, otherID, c1.ID)

		s.ErrorIs(err, ErrNotPermitted)
		s.Len(s.repo.Comments(), 2)
	})

	s.Run("should return not found on a second delete", func() {
		userID := s.registerUser("", "ada@example.com")
		postID := s.createPost()
		c1 := s.createComment(userID, postID, "c1", nil)
		c2 := s.createComment(userID, postID, "c2", nil)

		s.Require().NoError(s.service.DeleteComment(s.ctx, userID, c1.ID))
		err := s.service.DeleteComment(s.ctx, userID, c1.ID)

		s.ErrorIs(err, ErrRecordNotFound)
		s.Require().Len(s.repo.Comments(), 1)
		s.Equal(c2.ID, s.repo.Comments()[0].ID)
	})
}

func (s *ServiceTestSuite) TestListComments() {
	s.Run("should list top-level comments newest first", func() {
		userID := s.registerUser("Ada", "ada@example.com")
		postID := s.createPost()
		otherPostID := s.createPost()
		a := s.createComment(userID, postID, "a", nil)
		b := s.createComment(userID, postID, "b", nil)
		s.createComment(userID, postID, "reply to a", &a.ID)
		s.createComment(userID, otherPostID, "elsewhere", nil)

		comments, err := s.service.ListComments(s.ctx, postID)

		s.Require().NoError(err)
		s.Require().Len(comments, 2)
		s.Equal(b.ID, comments[0].ID)
		s.Equal(a.ID, comments[1].ID)
		for _, comment := range comments {
			s.Nil(comment.ParentID)
			s.Require().NotNil(comment.Author)
			s.Equal("Ada", comment.Author.Name)
		}
	})

	s.Run("should return an empty list for a post without comments", func() {
		comments, err := s.service.ListComments(s.ctx, 7)

		s.Require().NoError(err)
		s.NotNil(comments)
		s.Empty(comments)
	})

	s.Run("should surface storage failures", func() {
		s.repo.Err = errors.New("connection refused")

		_, err := s.service.ListComments(s.ctx, 1)

		s.EqualError(err, "connection refused")
	})
}

func (s *ServiceTestSuite) TestResolveIdentity() {
	s.Run("should serve a resolved identity from the cache", func() {
		userID := s.registerUser("Ada", "ada@example.com")

		identity, err := s.service.ResolveIdentity(s.ctx, userID)
		s.Require().NoError(err)
		s.Equal("Ada", identity.Name)

		s.repo.Err = errors.New("connection refused")
		cached, err := s.service.ResolveIdentity(s.ctx, userID)
		s.Require().NoError(err)
		s.Equal(identity, cached)
	})

	s.Run("should return not found for an unknown user", func() {
		_, err := s.service.ResolveIdentity(s.ctx, 99)

		s.ErrorIs(err, ErrRecordNotFound)
	})
}
