package web_test

import (
	"fmt"

	"github.com/ianto3/projectboard/internal/app/store"
)

func newStore() *store.ProjectStore {
	var n int
	return store.NewProjectStore(store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}))
}
