package handlers

import (
	"github.com/gofiber/fiber/v2"

	"local-chef-bazaar/entities"
)

// parseDocument reads the request body as a free-form document. A request
// without a body yields an empty document.
func parseDocument(c *fiber.Ctx) (entities.Document, error) {
	doc := entities.Document{}
	if len(c.Body()) == 0 {
		return doc, nil
	}
	if err := c.BodyParser(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
