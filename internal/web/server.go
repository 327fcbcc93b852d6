package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/content"
	"storefront/internal/logging"
	"storefront/internal/models"
)

//go:embed views/*.tmpl
var viewsFS embed.FS

type ViewData map[string]any

// EnquiryStore хранит заявки с формы контактов; nil — заявки только логируются.
type EnquiryStore interface {
	Create(ctx context.Context, e *models.Enquiry) error
	Recent(ctx context.Context, limit int) ([]models.Enquiry, error)
	Ping(ctx context.Context) error
}

// Server держит только неизменяемые зависимости; всё остальное собирается на каждый запрос.
type Server struct {
	cfg       config.Config
	source    *content.Source
	enquiries EnquiryStore
	logger    *zap.Logger
	reachable func(ctx context.Context, url string) bool
}

func New(cfg config.Config, source *content.Source, enquiries EnquiryStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:       cfg,
		source:    source,
		enquiries: enquiries,
		logger:    logger,
		reachable: isReachable,
	}
}

var funcs = template.FuncMap{
	"media": content.ResolveMediaURL,
	"add":   func(a, b int) int { return a + b },
	"sub":   func(a, b int) int { return a - b },
	"lower": strings.ToLower,
	"date":  func(t time.Time) string { return t.Format("2006-01-02 15:04") },
}

// Router собирает gin: логирование, сессии для flash-сообщений, статика, шаблоны, маршруты.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(logging.Middleware(s.logger), gin.Recovery())

	r.Static("/static", s.cfg.StaticDir)

	store := cookie.NewStore([]byte(s.cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("sf_session", store))

	r.SetHTMLTemplate(template.Must(template.New("").Funcs(funcs).ParseFS(viewsFS, "views/*.tmpl")))

	r.GET("/health", s.health)

	r.GET("/", s.index)
	r.GET("/about", s.page("about.tmpl"))
	r.GET("/faq", s.page("faq.tmpl"))
	r.GET("/gallery", s.gallery)
	r.GET("/testimonials", s.testimonials)
	r.GET("/contact", s.contact)
	r.POST("/contact", s.submitContact)

	r.GET("/shop", s.shop)
	r.GET("/shop-details", s.shopDetails)
	r.GET("/product/:id", s.shopDetails)
	r.GET("/search/api", s.searchAPI)

	r.GET("/cms", s.cmsPanel)
	r.GET("/cms/admin", func(c *gin.Context) { c.Redirect(http.StatusFound, "/cms") })

	admin := r.Group("/admin")
	admin.GET("/login", s.loginForm)
	admin.POST("/login", s.login)
	admin.GET("/logout", s.logout)
	admin.GET("/enquiries", s.mustAdmin(), s.listEnquiries)

	return r
}

// withGlobals добавляет в шаблон реквизиты компании, соцсети и flash-сообщения
func (s *Server) withGlobals(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	data["Company"] = s.cfg.Company
	data["Social"] = s.cfg.Social

	sess := sessions.Default(c)
	var errs, infos []string
	for _, f := range sess.Flashes("error") {
		if msg, ok := f.(string); ok {
			errs = append(errs, msg)
		}
	}
	for _, f := range sess.Flashes("info") {
		if msg, ok := f.(string); ok {
			infos = append(infos, msg)
		}
	}
	if len(errs)+len(infos) > 0 {
		_ = sess.Save()
	}
	data["FlashErrors"] = errs
	data["FlashInfo"] = infos
	data["IsAdmin"] = sess.Get(adminKey) != nil
	return data
}

func flash(c *gin.Context, category, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, category)
	_ = sess.Save()
}

// redirectWithError — пользователь видит одну строку, подробности уходят в лог
func (s *Server) redirectWithError(c *gin.Context, to, msg string, err error) {
	if err != nil {
		s.logger.Error(msg, zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	flash(c, "error", msg)
	c.Redirect(http.StatusFound, to)
}

func (s *Server) page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, s.withGlobals(c, nil))
	}
}

func (s *Server) health(c *gin.Context) {
	if s.enquiries != nil {
		if err := s.enquiries.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cms": s.cfg.CMS.Enabled()})
}
