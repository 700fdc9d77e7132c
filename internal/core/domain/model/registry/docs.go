// Package registry contains the Registry aggregate: the identity, role and id counter
// of one courier or container registry instance.
package registry
