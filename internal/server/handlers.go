package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/export"
	"github.com/jmylchreest/huestep/internal/palette"
)

type paletteResponse struct {
	Color  string        `json:"color"`
	Index  int           `json:"index"`
	Dark   bool          `json:"dark"`
	Format colour.Format `json:"format"`
	Value  string        `json:"value,omitempty"`
	Values []string      `json:"values,omitempty"`
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func boolQuery(c *gin.Context, key string) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return b, nil
}

func (s *Server) handlePalette(c *gin.Context) {
	input := c.Query("color")
	if input == "" {
		badRequest(c, fmt.Errorf("color is required"))
		return
	}

	seed, err := colour.Parse(input)
	if err != nil {
		badRequest(c, err)
		return
	}

	opts := palette.DefaultOptions()
	if raw := c.Query("index"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, fmt.Errorf("index must be an integer, got %q", raw))
			return
		}
		opts.Index = idx
	}
	if opts.Index == 0 {
		opts.Index = palette.BaseIndex
	}
	if opts.Dark, err = boolQuery(c, "dark"); err != nil {
		badRequest(c, err)
		return
	}
	if opts.Format, err = colour.ParseFormat(c.Query("format")); err != nil {
		badRequest(c, err)
		return
	}
	list, err := boolQuery(c, "list")
	if err != nil {
		badRequest(c, err)
		return
	}

	resp := paletteResponse{
		Color:  input,
		Index:  opts.Index,
		Dark:   opts.Dark,
		Format: opts.Format,
	}
	if list {
		resp.Values = palette.GenerateList(seed, opts).Slice()
	} else {
		resp.Value = palette.Generate(seed, opts)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts.Presets)
}

func (s *Server) handlePreset(c *gin.Context) {
	name := c.Param("name")
	p, ok := s.opts.Presets.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s: %s", palette.ErrUnknownPreset, name)})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleRGB(c *gin.Context) {
	input := c.Query("color")
	if input == "" {
		badRequest(c, fmt.Errorf("color is required"))
		return
	}
	rgb, err := colour.RGBStr(input)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rgb": rgb})
}

func (s *Server) handleThemeCSS(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WritePresets(&buf, s.opts.Presets, export.EncodingCSS); err != nil {
		s.logger.Error("failed to render theme", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/css; charset=utf-8", buf.Bytes())
}
