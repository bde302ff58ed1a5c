// Package menu contains the MenuItem aggregate of the catalog.
package menu
