package blogService

import (
	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/pagination"
	"ProjectBlog/pkg/s3"
	"ProjectBlog/pkg/utils"
	"errors"
	"mime/multipart"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID string, imageFile *multipart.FileHeader) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	var imageURL string
	if imageFile != nil {
		if err := s.validateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return blogs.BlogResponse{}, err
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return blogs.BlogResponse{}, blogs.ErrFailedToUpload
		}

		imageURL = uploadedURL
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return blogs.BlogResponse{}, err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:         blogID,
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		Image:      imageURL,
		Author:     userID,
		Tags:       req.Tags,
		Published:  req.Published,
		CommentIDs: pq.StringArray{},
		Views:      0,
		Likes:      0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrCreateBlog
	}

	return s.makeBlogResponse(requestID, blog), nil
}

// GetBlogByID is the single-blog read. Every call bumps the view counter,
// repeat views by the same client included, before the author and comment
// expansions are loaded.
func (s *blogsService) GetBlogByID(ctx context.Context, id string) (blogs.BlogDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogDetailResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogDetailResponse{}, err
	}

	blog.Views++
	if err := repo.Blogs.UpdateViews(ctx, id, blog.Views); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update view count")
		return blogs.BlogDetailResponse{}, err
	}

	author, err := s.loadAuthor(ctx, requestID, blog.Author)
	if err != nil {
		return blogs.BlogDetailResponse{}, err
	}

	commentList, err := s.loadComments(ctx, requestID, blog.ID)
	if err != nil {
		return blogs.BlogDetailResponse{}, err
	}

	return blogs.BlogDetailResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Summary:   blog.Summary,
		Image:     s.presignImage(requestID, blog.ID, blog.Image),
		Author:    author,
		Tags:      blog.Tags,
		Published: blog.Published,
		Comments:  commentList,
		Views:     blog.Views,
		Likes:     blog.Likes,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}, nil
}

func (s *blogsService) GetPublishedBlogs(ctx context.Context, page, limit int, search string) ([]blogs.BlogResponse, pagination.Descriptor, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, pagination.Descriptor{}, err
	}

	page, limit = pagination.Normalize(page, limit)
	offset := pagination.Offset(page, limit)

	blogsList, total, err := repo.Blogs.GetPublishedBlogs(ctx, search, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page,
			"limit":      limit,
			"search":     search,
			"error":      err.Error(),
		}).Error("Failed to get published blogs")
		return nil, pagination.Descriptor{}, err
	}

	result := make([]blogs.BlogResponse, 0, len(blogsList))
	for _, blog := range blogsList {
		result = append(result, s.makeBlogResponse(requestID, blog))
	}

	return result, pagination.NewDescriptor(total, page, limit), nil
}

// GetUserBlogs lists the caller's own blogs, drafts included: the author
// filter replaces the published filter rather than narrowing it.
func (s *blogsService) GetUserBlogs(ctx context.Context, userID string, page, limit int) ([]blogs.BlogResponse, pagination.Descriptor, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, pagination.Descriptor{}, err
	}

	page, limit = pagination.Normalize(page, limit)
	offset := pagination.Offset(page, limit)

	blogsList, total, err := repo.Blogs.GetBlogsByAuthor(ctx, userID, limit, offset)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       page,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to get user blogs")
		return nil, pagination.Descriptor{}, err
	}

	result := make([]blogs.BlogResponse, 0, len(blogsList))
	for _, blog := range blogsList {
		result = append(result, s.makeBlogResponse(requestID, blog))
	}

	return result, pagination.NewDescriptor(total, page, limit), nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, userID string, imageFile *multipart.FileHeader) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	if existingBlog.Author != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existingBlog.Author,
			"request_user": userID,
		}).Warn("User is not the author of the blog")
		return blogs.BlogResponse{}, blogs.ErrBlogNotOwned
	}

	if req.Title != "" {
		existingBlog.Title = req.Title
	}
	if req.Content != "" {
		existingBlog.Content = req.Content
	}
	if req.Summary != "" {
		existingBlog.Summary = req.Summary
	}
	if req.Tags != nil {
		existingBlog.Tags = req.Tags
	}
	if req.Published != nil {
		existingBlog.Published = *req.Published
	}

	if imageFile != nil {
		if err := s.validateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return blogs.BlogResponse{}, err
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return blogs.BlogResponse{}, blogs.ErrFailedToUpload
		}

		if existingBlog.Image != "" {
			s.deleteImageAsync(requestID, existingBlog.Image)
		}

		existingBlog.Image = uploadedURL
	} else if req.ImageURL == "remove" && existingBlog.Image != "" {
		s.deleteImage(requestID, existingBlog.Image)
		existingBlog.Image = ""
	}

	existingBlog.UpdatedAt = time.Now()

	if err := repo.Blogs.UpdateBlog(ctx, existingBlog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.BlogResponse{}, blogs.ErrUpdateBlog
	}

	return s.makeBlogResponse(requestID, existingBlog), nil
}

// DeleteBlog removes the blog row and its stored image. Comments referencing
// the blog are left in place as orphans; there is no cleanup job yet.
func (s *blogsService) DeleteBlog(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existingBlog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return err
	}

	if existingBlog.Author != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"id":           id,
			"blog_author":  existingBlog.Author,
			"request_user": userID,
		}).Warn("User is not the author of the blog")
		return blogs.ErrBlogNotOwned
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	if existingBlog.Image != "" {
		s.deleteImage(requestID, existingBlog.Image)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	return nil
}

// LikeBlog bumps the like counter. There is no per-user tracking: the same
// principal may like a blog any number of times and every call counts.
func (s *blogsService) LikeBlog(ctx context.Context, id string) (blogs.LikeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.LikeResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.LikeResponse{}, err
	}

	blog.Likes++
	if err := repo.Blogs.UpdateLikes(ctx, id, blog.Likes); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update like count")
		return blogs.LikeResponse{}, err
	}

	return blogs.LikeResponse{
		ID:    blog.ID,
		Likes: blog.Likes,
	}, nil
}

func (s *blogsService) loadAuthor(ctx context.Context, requestID, authorID string) (blogs.AuthorResponse, error) {
	usersClient, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create users repository client")
		return blogs.AuthorResponse{}, err
	}

	author, err := usersClient.Users.GetByID(ctx, authorID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"author":     authorID,
			"error":      err.Error(),
		}).Error("Failed to load blog author")
		return blogs.AuthorResponse{}, err
	}

	return blogs.AuthorResponse{
		ID:    author.ID,
		Name:  author.Name,
		Email: author.Email,
	}, nil
}

func (s *blogsService) loadComments(ctx context.Context, requestID, blogID string) ([]blogs.BlogCommentResponse, error) {
	commentsClient, err := s.commentsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create comments repository client")
		return nil, err
	}

	commentList, err := commentsClient.Comments.GetCommentsByBlogID(ctx, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blogID,
			"error":      err.Error(),
		}).Error("Failed to load blog comments")
		return nil, err
	}

	result := make([]blogs.BlogCommentResponse, 0, len(commentList))
	for _, comment := range commentList {
		result = append(result, blogs.BlogCommentResponse{
			ID:      comment.ID,
			Content: comment.Content,
			User: blogs.CommenterResponse{
				ID:   comment.UserID,
				Name: comment.UserName,
			},
			CreatedAt: comment.CreatedAt,
		})
	}

	return result, nil
}

func (s *blogsService) makeBlogResponse(requestID string, blog entity.Blog) blogs.BlogResponse {
	return blogs.BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Summary:   blog.Summary,
		Image:     s.presignImage(requestID, blog.ID, blog.Image),
		Author:    blog.Author,
		Tags:      blog.Tags,
		Published: blog.Published,
		Comments:  blog.CommentIDs,
		Views:     blog.Views,
		Likes:     blog.Likes,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}

func (s *blogsService) presignImage(requestID, blogID, imageURL string) string {
	if imageURL == "" {
		return ""
	}

	presignedURL, err := s.s3Client.PresignUrl(imageURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blogID,
			"image":      imageURL,
			"error":      err.Error(),
		}).Warn("Failed to create presigned URL for image")
		return imageURL
	}

	return presignedURL
}

func (s *blogsService) deleteImage(requestID, imageURL string) {
	fileName := s3.ExtractKey(imageURL)

	if err := s.s3Client.DeleteFile(fileName); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file_name":  fileName,
			"error":      err.Error(),
		}).Warn("Failed to delete image")
	}
}

func (s *blogsService) deleteImageAsync(requestID, imageURL string) {
	fileName := s3.ExtractKey(imageURL)

	go func() {
		if err := s.s3Client.DeleteFile(fileName); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  fileName,
				"error":      err.Error(),
			}).Warn("Failed to delete old image")
		}
	}()
}

func (s *blogsService) validateImageFile(file *multipart.FileHeader) error {
	if err := s.utils.ValidateImageFile(file); err != nil {
		if errors.Is(err, utils.ErrFileSizeExceedsLimit) {
			return blogs.ErrFileTooLarge
		}
		return blogs.ErrInvalidFileType
	}

	return nil
}
