// Package domain holds the entities shared by services, storage and the API:
// regions with their locale memberships, accounts and orders.
package domain
