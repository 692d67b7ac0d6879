// Package catalog holds the category and product records and their rule
// tables. Products show the collection case: every variant is validated with
// its own schema and reported under "variants" with its index.
package catalog
