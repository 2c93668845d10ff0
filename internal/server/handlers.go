package server

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"termfolio/internal/content"
	"termfolio/pkg/termtypes"
)

// maxContactBody bounds the size of a contact submission.
const maxContactBody = 64 << 10

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) handleClientInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, termtypes.ClientInfo{
		Username:  "visitor",
		IPAddress: clientIP(r),
		Hostname:  s.hostname,
		UserAgent: r.UserAgent(),
	})
}

// clientIP prefers the first X-Forwarded-For address over the peer address
// and reports the IPv6 loopback as 127.0.0.1.
func clientIP(r *http.Request) string {
	ip := r.Header.Get("X-Forwarded-For")
	if first, _, _ := strings.Cut(ip, ","); first != "" {
		ip = strings.TrimSpace(first)
	}
	if ip == "" {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		ip = host
	}
	if parsed := net.ParseIP(ip); parsed != nil && parsed.Equal(net.IPv6loopback) {
		ip = "127.0.0.1"
	}
	if ip == "" {
		return "unknown"
	}
	return ip
}

func (s *Server) handleServerInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.host.ServerInfo())
}

func (s *Server) handleBootInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.host.BootInfo())
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	files, err := s.store.DirectoryContents(name)
	if err != nil {
		s.log.Debug("Directory listing failed", "path", name, "error", err)
		s.writeJSON(w, http.StatusOK, termtypes.DirectoryListing{Error: "Failed to read directory: " + name})
		return
	}
	s.writeJSON(w, http.StatusOK, termtypes.DirectoryListing{Path: name, Contents: files})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	text, err := s.store.FileContent(path)
	if err != nil {
		s.log.Debug("File read failed", "path", path, "error", err)
		msg := "Failed to read file: " + path
		if errors.Is(err, content.ErrNotFound) {
			msg = "Failed to read file: File not found: " + path
		}
		s.writeJSON(w, http.StatusOK, termtypes.FileContent{Error: msg})
		return
	}
	s.writeJSON(w, http.StatusOK, termtypes.FileContent{Path: path, Content: text})
}

func (s *Server) handleBlogList(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.BlogList()
	writeList(s, w, posts, err)
}

func (s *Server) handleBlogSearch(w http.ResponseWriter, r *http.Request) {
	posts, err := s.store.SearchBlog(r.URL.Query().Get("term"))
	writeList(s, w, posts, err)
}

func (s *Server) handlePortfolioList(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.PortfolioList()
	writeList(s, w, projects, err)
}

func (s *Server) handlePortfolioFilter(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.FilterPortfolio(r.URL.Query().Get("tech"))
	writeList(s, w, projects, err)
}

// writeList writes items, or an empty list when err is set.
func writeList[T any](s *Server, w http.ResponseWriter, items []T, err error) {
	if err != nil {
		s.log.Warn("Content listing failed", "error", err)
		items = nil
	}
	if items == nil {
		items = []T{}
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.store.Resume()
	if err != nil {
		s.log.Warn("Resume unavailable", "error", err)
		s.writeJSON(w, http.StatusOK, termtypes.Resume{Error: "Failed to load resume"})
		return
	}
	s.writeJSON(w, http.StatusOK, resume)
}

func (s *Server) handleResumeDownload(w http.ResponseWriter, r *http.Request) {
	pdf, err := s.store.ResumePDF()
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		s.log.Error("Resume download failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req termtypes.ContactRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, termtypes.ContactResponse{Error: "Invalid request body"})
		return
	}

	msg, err := s.contacts.Record(req)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, termtypes.ContactResponse{Error: capitalize(err.Error())})
		return
	}
	s.log.Info("Contact message received", "id", msg.ID, "name", msg.Name, "email", msg.Email)

	sent := false
	if s.mailer != nil {
		if err := s.mailer.Send(r.Context(), msg); err != nil {
			s.log.Error("Failed to send contact notification", "id", msg.ID, "error", err)
		} else {
			sent = true
		}
	}
	s.writeJSON(w, http.StatusOK, termtypes.ContactResponse{ID: msg.ID, EmailSent: sent})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
