// Package collab drives the tools a node needs besides its network setup:
// the package manager, the swarm repository, a Python virtualenv and the
// container images.
package collab
