// Package industries registers every industry definition with the core
// registry. Import it for side effects wherever the registry is read.
package industries

// Each file registers its industries from init(); this file only carries
// the package doc.
