// Package scripts contains game script components that expose icon entry
// points by method name instead of implementing the interaction interfaces.
// Selectors reach them through the dynamic filter.
package scripts
