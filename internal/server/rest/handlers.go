package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/blogapi/internal/common"
	"github.com/dmitrijs2005/blogapi/internal/server/models"
	"github.com/dmitrijs2005/blogapi/internal/server/services"
)

type registerRequest struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

type createBlogRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AuthorName  string   `json:"author_name"`
	BlogImage   *string  `json:"blog_image"`
	PublishDate *string  `json:"publish_date"`
	TotalLikes  *float64 `json:"total_likes"`
}

type createBlogResponse struct {
	Message string       `json:"message"`
	Blog    *models.Blog `json:"blog"`
}

type healthResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Message:   "Server is running smoothly",
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.requestLogger(ctx)

	var req registerRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Success: false, Message: msgInvalidBody})
		return
	}

	err := s.users.Register(ctx, req.UserName, req.Email, req.Password)
	switch {
	case err == nil:
		logger.Info(ctx, "Registered", "username", req.UserName)
		writeJSON(w, http.StatusCreated, statusResponse{Success: true, Message: "User registered successfully!"})
	case errors.Is(err, common.ErrDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, statusResponse{Success: false, Message: "User already exist!!!"})
	default:
		logger.Error(ctx, "registration failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Success: false, Message: msgServerError})
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.requestLogger(ctx)

	var req loginRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := s.users.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, loginResponse{
			Success:     true,
			Message:     "User successfully logged in!",
			AccessToken: token,
		})
	case errors.Is(err, common.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
	default:
		logger.Error(ctx, "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.requestLogger(ctx)

	var req createBlogRequest
	if err := readJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	blog, err := s.blogs.Create(ctx, services.BlogInput{
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		BlogImage:   req.BlogImage,
		PublishDate: req.PublishDate,
		TotalLikes:  req.TotalLikes,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, createBlogResponse{Message: "Blog created successfully!", Blog: blog})
	case errors.Is(err, common.ErrMissingRequiredField):
		writeMessage(w, http.StatusBadRequest, "Title, Content, and Author are required!")
	default:
		logger.Error(ctx, "create blog failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blogs, err := s.blogs.List(ctx)
	if err != nil {
		s.requestLogger(ctx).Error(ctx, "list blogs failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	writeJSON(w, http.StatusOK, blogs)
}
