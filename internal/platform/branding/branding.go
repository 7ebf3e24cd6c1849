// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the user-facing product name.
const AppName = "TradeLane"

// Tagline is the short marketing line shown on public pages.
const Tagline = "Freight forwarding and shipment tracking for growing businesses."
