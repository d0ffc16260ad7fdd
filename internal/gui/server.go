// A very simple gin HTTP server
// for reading the latest experiment report
// from a web page.
// The gui sends an empty struct to the runner bridge
// and the runner sends back the current report text
// which the page displays as is.
package gui

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jixinwang95/mban-orientation/internal/runner"
)

var reportRequestStream chan<- struct{}
var reportStream <-chan string
var router *gin.Engine

func registerRoutes() {
	router.POST("/state", func(ctx *gin.Context) {
		reportRequestStream <- struct{}{}
		ctx.JSON(http.StatusOK, gin.H{
			"content": <-reportStream,
		})
	})

	router.GET("/", func(ctx *gin.Context) {
		ctx.HTML(http.StatusOK, "index.html", gin.H{})
	})
}

func SetUp(bridge runner.Bridge) {
	reportStream = bridge.ReportStream
	reportRequestStream = bridge.ReportRequestStream

	router = gin.Default()
	router.LoadHTMLFiles("./internal/gui/index.html")

	router.Use(cors.Default())

	registerRoutes()
}

func Run() {
	router.Run(":8080")
}
