package server

import (
	"github.com/gofiber/fiber/v2"
)

// AboutAuthor handles GET /api/about/author - static project author page.
func (s *Server) AboutAuthor(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About the author",
		"body":  "Yatube is a small social blogging platform built as a learning project.",
	})
}

// AboutTech handles GET /api/about/tech - static technology page.
func (s *Server) AboutTech(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Technologies",
		"stack": []string{
			"Go",
			"Fiber",
			"GORM",
			"PostgreSQL",
			"Redis",
			"Prometheus",
		},
	})
}
