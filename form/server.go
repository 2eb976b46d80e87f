// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

// Package form serves the interactive conversion form: an HTML page backed
// by a small JSON API over the same engine the batch mode uses.
package form

import (
	"embed"
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jcodagnone/rumbo/coord"
	"github.com/jcodagnone/rumbo/table"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct{}

func NewServer() *Server {
	return &Server{}
}

// Router builds the gin engine with all routes registered. Split out from
// Run so tests can drive it with httptest.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	r.GET("/", s.indexView)
	r.POST("/api/convert", s.convertTable)
	r.POST("/api/parse", s.parsePair)

	return r
}

// Run serves the form on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	return s.Router().Run(addr)
}

func (s *Server) indexView(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

type convertRequest struct {
	Text string `json:"text" binding:"required"`
	H3   int    `json:"h3"`
}

type convertResponse struct {
	Lines  []string `json:"lines"`
	Rows   int      `json:"rows"`
	Failed int      `json:"failed"`
}

// convertTable runs the batch engine over pasted tabular text. Cell-level
// failures are data, not transport errors: they come back as marker cells
// inside a 200 response.
func (s *Server) convertTable(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if req.H3 < 0 || req.H3 > 15 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "h3 resolution must be between 0 and 15"})

		return
	}

	res := table.Convert(splitLines(req.Text), table.Options{
		H3Resolution: req.H3,
		MaxProcs:     1,
	})

	c.JSON(http.StatusOK, convertResponse{
		Lines:  res.Lines,
		Rows:   res.Rows,
		Failed: res.Failed,
	})
}

type parseRequest struct {
	Text  string `json:"text" binding:"required"`
	Order string `json:"order"`
}

type axisResult struct {
	Source string               `json:"source"`
	Forms  *coord.StandardForms `json:"forms,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// parsePair converts a single combined "lat lon" pair as typed into the
// one-line input. Responds 422 when either axis fails to parse.
func (s *Server) parsePair(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	layout := table.Layout{Kind: table.Combined, Order: table.LatFirst}

	switch req.Order {
	case "", "latlon":
	case "lonlat":
		layout.Order = table.LonFirst
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "order must be latlon or lonlat"})

		return
	}

	latText, lonText, err := table.Split(layout, []string{strings.TrimSpace(req.Text)})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected exactly two whitespace-separated fields"})

		return
	}

	lat := parseAxis(latText, coord.Latitude)
	lon := parseAxis(lonText, coord.Longitude)

	status := http.StatusOK
	if lat.Error != "" || lon.Error != "" {
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"lat": lat, "lon": lon})
}

func parseAxis(text string, axis coord.Axis) axisResult {
	a, err := coord.Parse(text, axis)
	if err != nil {
		return axisResult{Source: text, Error: err.Error()}
	}

	forms := coord.Render(a)

	return axisResult{Source: a.Source, Forms: &forms}
}

// splitLines breaks pasted text into lines, tolerating CRLF and a trailing
// newline from the textarea.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
