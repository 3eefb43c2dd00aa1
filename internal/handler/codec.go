package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"huffcodec/internal/model"
	"huffcodec/internal/repo"
	"huffcodec/internal/service"
	"huffcodec/pkg/huffman"
)

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

type encodeReq struct {
	Name string `json:"name"`
	Text string `json:"text" binding:"required"`
}

type encodeResp struct {
	Artifact    *model.Artifact   `json:"artifact"`
	Codes       map[string]string `json:"codes"`
	Frequencies map[string]uint32 `json:"frequencies"`
}

func (h *CodecHandler) Encode(c *gin.Context) {
	var req encodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, res, err := h.svc.Encode(c.Request.Context(), req.Name, req.Text)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	codes := make(map[string]string, len(res.Codes))
	freqs := make(map[string]uint32, res.Table.Len())
	for _, r := range res.Table.Symbols() {
		codes[string(r)] = res.Codes[r].String()
		freqs[string(r)] = res.Table.Count(r)
	}
	c.JSON(http.StatusCreated, encodeResp{Artifact: a, Codes: codes, Frequencies: freqs})
}

func (h *CodecHandler) GetByID(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *CodecHandler) GetBlob(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", a.Blob)
}

func (h *CodecHandler) GetText(c *gin.Context) {
	text, err := h.svc.DecodeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *CodecHandler) Decode(c *gin.Context) {
	blob, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text, err := h.svc.DecodeBlob(blob)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *CodecHandler) List(c *gin.Context) {
	artifacts, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, huffman.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, huffman.ErrMalformedContainer), errors.Is(err, huffman.ErrCorruptStream):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
