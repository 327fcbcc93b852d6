package web

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/models"
)

const (
	adminKey      = "admin"
	enquiryLimit  = 100
	reachTimeout  = 3 * time.Second
	maxFieldRunes = 5000
)

func (s *Server) submitContact(c *gin.Context) {
	e := models.Enquiry{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Phone:   strings.TrimSpace(c.PostForm("phone")),
		Subject: strings.TrimSpace(c.PostForm("subject")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	if msg := validateEnquiry(e); msg != "" {
		page, ok := s.contactContent(c)
		if !ok {
			return
		}
		c.HTML(http.StatusBadRequest, "contact.tmpl", s.withGlobals(c, ViewData{
			"Content": page, "Error": msg,
			"Form": ViewData{"Name": e.Name, "Email": e.Email, "Phone": e.Phone, "Subject": e.Subject, "Message": e.Message},
		}))
		return
	}

	if s.enquiries != nil {
		if err := s.enquiries.Create(c.Request.Context(), &e); err != nil {
			s.redirectWithError(c, "/contact", "Could not send your message, please try again", err)
			return
		}
	}
	s.logger.Info("enquiry received", zap.String("email", e.Email), zap.Bool("stored", s.enquiries != nil))
	flash(c, "info", "Thanks! We will get back to you shortly.")
	c.Redirect(http.StatusSeeOther, "/contact")
}

func validateEnquiry(e models.Enquiry) string {
	if e.Name == "" || e.Email == "" || e.Message == "" {
		return "Fill name, email and message"
	}
	if _, err := mail.ParseAddress(e.Email); err != nil {
		return "Email looks invalid"
	}
	if len([]rune(e.Message)) > maxFieldRunes {
		return "Message is too long"
	}
	return ""
}

// cmsPanel отправляет в админку Strapi, если она отвечает
func (s *Server) cmsPanel(c *gin.Context) {
	adminURL := s.cfg.CMS.AdminURL
	if adminURL == "" {
		s.redirectWithError(c, "/shop", "CMS is not configured. Set STRAPI_ADMIN_URL or STRAPI_URL.", nil)
		return
	}
	if !s.reachable(c.Request.Context(), adminURL) {
		s.redirectWithError(c, "/shop", "CMS is configured but Strapi admin is not reachable. Start Strapi and try again.", nil)
		return
	}
	c.Redirect(http.StatusFound, adminURL)
}

// isReachable: any HTTP answer, even an error status, means the server is up.
func isReachable(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, reachTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

// ---------- admin ----------

func (s *Server) adminEnabled() bool {
	return s.cfg.AdminHash != "" && s.enquiries != nil && s.cfg.HasSessionSecret()
}

func (s *Server) mustAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.adminEnabled() {
			c.String(http.StatusNotFound, "Not found")
			c.Abort()
			return
		}
		sess := sessions.Default(c)
		if sess.Get(adminKey) == nil {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) loginForm(c *gin.Context) {
	if !s.adminEnabled() {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", s.withGlobals(c, nil))
}

func (s *Server) login(c *gin.Context) {
	if !s.adminEnabled() {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	pw := c.PostForm("password")
	if pw == "" {
		c.HTML(http.StatusBadRequest, "login.tmpl", s.withGlobals(c, ViewData{"Error": "Fill all fields"}))
		return
	}
	if !models.CheckPassword(s.cfg.AdminHash, pw) {
		c.HTML(http.StatusUnauthorized, "login.tmpl", s.withGlobals(c, ViewData{"Error": "Wrong password"}))
		return
	}
	sess := sessions.Default(c)
	sess.Set(adminKey, true)
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/admin/enquiries")
}

func (s *Server) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) listEnquiries(c *gin.Context) {
	items, err := s.enquiries.Recent(c.Request.Context(), enquiryLimit)
	if err != nil {
		s.redirectWithError(c, "/", "Enquiries are unavailable", err)
		return
	}
	c.HTML(http.StatusOK, "enquiries.tmpl", s.withGlobals(c, ViewData{"Items": items}))
}
