package cli

import (
	"context"
	"fmt"
)

// Whoami renders the current auth state snapshot: the hydrated profile, a
// loading indicator while the reconciler is still fetching it, or the last
// error.
func (a *App) Whoami(ctx context.Context) error {
	st := a.store.Snapshot()

	switch {
	case st.Loading:
		fmt.Println("Loading profile...")
	case st.User != nil:
		fmt.Printf("ID:    %s\nName:  %s\nEmail: %s\n", st.User.ID, st.User.Name, st.User.Email)
	case st.Error != "":
		fmt.Println(st.Error)
	default:
		fmt.Println("Not signed in.")
	}
	return nil
}
