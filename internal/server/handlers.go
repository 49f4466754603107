package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/company-profiler/internal/crawling"
	"github.com/jonathan/company-profiler/internal/schemas"
	"github.com/jonathan/company-profiler/internal/server/middleware"
	"github.com/jonathan/company-profiler/internal/types"
)

// ProfileRequest represents the request for /profile
type ProfileRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

// handleProfile crawls the site named by the url query parameter
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.serveProfile(w, r, ProfileRequest{URL: r.URL.Query().Get("url")})
}

// handleProfileBody crawls the site named in a JSON request body
func (s *Server) handleProfileBody(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.serveProfile(w, r, req)
}

func (s *Server) serveProfile(w http.ResponseWriter, r *http.Request, req ProfileRequest) {
	req.URL = strings.TrimSpace(req.URL)
	if err := s.checkRequest(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	log.Printf("Profiling %s (request %s)", req.URL, middleware.GetRequestID(r))
	profile := s.crawler.Crawl(r.Context(), req.URL)

	if s.validateOutput {
		if err := validateProfile(profile); err != nil {
			log.Printf("Profile for %s failed validation: %v", req.URL, err)
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) checkRequest(req ProfileRequest) error {
	if err := crawling.CheckInput(req.URL); err != nil {
		return &ErrValidation{Field: "url", Message: "is required"}
	}
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ErrValidation{Field: "url", Message: "failed '" + fieldErrs[0].Tag() + "' check"}
	}
	return &ErrValidation{Field: "url", Message: err.Error()}
}

func validateProfile(profile *types.CompanyProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return &ErrInvalidProfile{Cause: err}
	}
	if err := schemas.ValidateCompanyProfile(data); err != nil {
		return &ErrInvalidProfile{Cause: err}
	}
	return nil
}
