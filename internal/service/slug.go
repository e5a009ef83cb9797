package service

import "github.com/gosimple/slug"

// Slugify transliterates name to lowercase ASCII and joins its words with
// dashes. Names with nothing to transliterate give an empty slug.
func Slugify(name string) string {
	return slug.Make(name)
}
