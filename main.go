package main

import (
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/cardfeed"
	"github.com/Zachkp/portfolio/internal/gate"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/tilt"
)

func main() {
	cfg := LoadConfig()
	initHashing()

	sessions, closeSessions := openSessions(cfg)
	defer closeSessions()

	r := newRouter(cfg, sessions)
	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped:", err)
	}
}

func openSessions(cfg Config) (session.Manager, func()) {
	if cfg.SessionBackend == "memory" {
		log.Println("Sessions: in memory, lost on restart")
		m := session.NewMemoryManager()
		m.StartCleanup(session.DefaultRetention, time.Hour, log.Default())
		return m, m.Close
	}

	m, err := session.OpenSQLite(cfg.DBPath, log.Default())
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}
	m.StartCleanup(session.DefaultRetention, time.Hour)
	log.Printf("Sessions: sqlite at %s", cfg.DBPath)
	return m, func() { m.Close() }
}

func newRouter(cfg Config, sessions session.Manager) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(cfg.TemplateGlob)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(session.Middleware(sessions))

	setupPageRoutes(r)
	setupContactRoutes(r, cfg.SMTP, sendContactEmail)
	setupGateRoutes(r, gate.NewController(cfg.Answers))

	feed := cardfeed.NewHandler(cardfeed.HandlerConfig{
		Logger: log.Default(),
		Card: tilt.CardConfig{
			EnableTilt:            defaultProfile.EnableTilt,
			EnableMobileTilt:      defaultProfile.EnableMobile,
			MobileTiltSensitivity: 5,
		},
	})
	r.GET("/ws/card", gin.WrapH(feed))

	return r
}

func page(title string, extra gin.H) gin.H {
	h := gin.H{
		"title": title,
		"dock":  dockItems,
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

func setupPageRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", page("Home", gin.H{
			"headline": HomeHeadline,
			"intro":    HomeIntro,
		}))
	})

	// About page hosts the tilt profile card
	r.GET("/about", func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", page("About", gin.H{
			"aboutMeContent": AboutMe,
			"profile":        defaultProfile,
		}))
	})

	r.GET("/projects", func(c *gin.Context) {
		c.HTML(http.StatusOK, "projects.html", page("Projects", gin.H{
			"projects": projects.All(),
		}))
	})

	r.GET("/project-summary/:id", func(c *gin.Context) {
		p, ok := projects.Find(c.Param("id"))
		if !ok {
			projectNotFound(c)
			return
		}
		c.HTML(http.StatusOK, "project-summary.html", page(p.Title, gin.H{"project": p}))
	})

	r.GET("/project/:id", func(c *gin.Context) {
		p, ok := projects.Find(c.Param("id"))
		if !ok {
			projectNotFound(c)
			return
		}
		c.HTML(http.StatusOK, "project.html", page(p.Title, gin.H{"project": p}))
	})

	r.GET("/skills", func(c *gin.Context) {
		c.HTML(http.StatusOK, "skills.html", page("Skills", gin.H{
			"intro":  SkillsIntro,
			"groups": skillGroups,
		}))
	})

	r.GET("/contact", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", page("Contact Me", nil))
	})
}

func projectNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "project-missing.html", page("Project not found", nil))
}
