package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/smallbiznis/staffhub/internal/resource"
	"github.com/smallbiznis/staffhub/internal/validation"
)

var resourceMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// bindJSON decodes the request body. An empty body decodes as {} so missing
// fields are reported by validation rather than as malformed JSON.
func bindJSON(c *gin.Context) resource.BindFunc {
	return func(dst any) error {
		err := c.ShouldBindBodyWith(dst, binding.JSON)
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
		body, _ := c.Get(gin.BodyBytesKey)
		raw, _ := body.([]byte)
		return validation.DecodeErrorFor(err, raw, dst)
	}
}

func (s *Server) listResource(ep resource.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := s.pageFromQuery(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		items, meta, err := ep.ListPage(c.Request.Context(), page)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": items, "meta": meta})
	}
}

func (s *Server) createResource(ep resource.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		created, err := ep.CreateFrom(c.Request.Context(), bindJSON(c))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"data": created})
	}
}

func (s *Server) showResource(ep resource.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		item, err := ep.Find(c.Request.Context(), id)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": item})
	}
}

func (s *Server) updateResource(ep resource.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		updated, err := ep.UpdateFrom(c.Request.Context(), id, bindJSON(c))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": updated})
	}
}

func (s *Server) deleteResource(ep resource.Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		if err := ep.Remove(c.Request.Context(), id); err != nil {
			AbortWithError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// listRelated pages through the child rows of one parent, 404 when the
// parent does not exist.
func (s *Server) listRelated(rel resource.Relation) gin.HandlerFunc {
	parent := s.endpoints[rel.Parent]
	child := s.endpoints[rel.Child]

	return func(c *gin.Context) {
		id, err := parseID(c.Param("id"))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := c.Request.Context()
		if _, err := parent.Find(ctx, id); err != nil {
			AbortWithError(c, err)
			return
		}

		page, err := s.pageFromQuery(c)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		items, meta, err := child.ListPageBy(ctx, rel.Column, id, page)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": items, "meta": meta})
	}
}

func (s *Server) ResourceMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": resourceMethods})
}
