// SPDX-License-Identifier: MIT

// Package i holds the interfaces shared by the HTTP controllers and router.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a versioned router group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
