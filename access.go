// access.go - hidden pages behind the tap sequence and secret form
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/gate"
	"github.com/Zachkp/portfolio/internal/session"
)

var hashingSalt string

func initHashing() {
	hashingSalt = generateSalt()
}

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address so logs never hold raw addresses (consistent per IP)
func hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + hashingSalt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// localPath accepts only same-site absolute paths.
func localPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}

func renderEpoxy(c *gin.Context, status int, admin bool, errMsg string) {
	noStore(c)
	c.HTML(status, "epoxy.html", gin.H{
		"title": "Access Required",
		"admin": admin,
		"error": errMsg,
	})
}

// Setup all hidden-page routes. Every failure redirects to "/" without
// saying why.
func setupGateRoutes(r *gin.Engine, ctrl *gate.Controller) {
	// Tap reporter for the secret sequence (HTMX or fetch)
	r.POST("/tap", func(c *gin.Context) {
		id := c.PostForm("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"unlocked": false})
			return
		}

		store := session.From(c)
		if !gate.RecordTap(store, gate.SecretSequence, id) {
			c.JSON(http.StatusOK, gin.H{"unlocked": false})
			return
		}

		path, err := ctrl.Unlock(store)
		if err != nil {
			log.Printf("Error minting access token: %v", err)
			c.JSON(http.StatusOK, gin.H{"unlocked": false})
			return
		}

		log.Printf("Hidden page unlocked from %s", hashIP(c.ClientIP()))
		c.Header("HX-Redirect", path)
		c.JSON(http.StatusOK, gin.H{"unlocked": true, "redirect": path})
	})

	// Admin variant, always authorized
	r.GET("/epoxy", func(c *gin.Context) {
		renderEpoxy(c, http.StatusOK, true, "")
	})

	r.POST("/epoxy/verify", func(c *gin.Context) {
		store := session.From(c)
		admin := c.PostForm("admin") == "1"

		err := ctrl.Submit(store, c.PostForm("answer1"), c.PostForm("answer2"))
		if err != nil {
			log.Printf("Failed hidden page answer from %s", hashIP(c.ClientIP()))
			renderEpoxy(c, http.StatusUnauthorized, admin, gate.IncorrectMessage)
			return
		}

		log.Printf("Boost access granted to %s", hashIP(c.ClientIP()))
		c.Redirect(http.StatusSeeOther, "/boost")
	})

	r.GET("/boost", func(c *gin.Context) {
		if !ctrl.CheckBoost(session.From(c)) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		noStore(c)
		c.HTML(http.StatusOK, "boost.html", gin.H{
			"title": "Boost",
			"dock":  dockItems,
		})
	})

	// Leaving the boost page drops the grant
	r.GET("/boost/leave", func(c *gin.Context) {
		ctrl.LeaveBoost(session.From(c))
		to := c.DefaultQuery("to", "/")
		if !localPath(to) {
			to = "/"
		}
		c.Redirect(http.StatusFound, to)
	})

	// First-stage gate, catch-all for single-segment paths
	r.GET("/:token", func(c *gin.Context) {
		if !ctrl.CheckToken(session.From(c), c.Param("token"), false) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		renderEpoxy(c, http.StatusOK, false, "")
	})
}
