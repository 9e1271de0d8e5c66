//go:build headless

package main

import (
	"errors"

	"github.com/gogpu/burning"
)

func runViewer(*burning.Driver, *scene) error {
	return errors.New("viewer not available in headless builds")
}
