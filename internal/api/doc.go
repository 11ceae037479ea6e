// Package api provides the HTTP REST API server for Innkeeper.
//
// It exposes user registration and login plus CRUD operations on the
// room and guest inventory. All inventory routes sit behind a bearer
// token gate; register and login are public.
//
// The server follows the same lifecycle pattern as other infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
