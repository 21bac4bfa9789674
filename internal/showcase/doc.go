// Package showcase holds the application root: the single owned list of websites and the Listing/Admin mode.
//
// A [Showcase] is mounted once, preferring persisted data and falling back to the seed list, which is then written back immediately.
// The only mutation is [Showcase.Add]: it assigns the next identifier (one more than the current maximum), appends the entry and persists the whole list.
//
// Views never mutate state. They read [Showcase.Websites] or the [Split] halves and render them.
package showcase
