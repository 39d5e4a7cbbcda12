// Package mapprovider defines the map collaborator contract: a Provider
// fills in a grid, a base position, and the client/station cell lists the
// dispatcher needs to run a simulation. Two implementations are provided:
// ProceduralProvider (random layout, retried against a reachability
// validator) and FileProvider (a text-grid loader).
//
// A Provider's Result carries the map's effective dimensions and client/
// station counts; callers should copy those back onto their config.Config
// after a successful Generate, since FileProvider may have resized the map
// to match the loaded file.
package mapprovider
