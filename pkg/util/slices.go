package util

// InPlaceFilter keeps only the elements of s matching the predicate p,
// reusing the backing array.
func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	kept := 0
	for _, element := range *s {
		if p(element) {
			(*s)[kept] = element
			kept++
		}
	}

	*s = (*s)[:kept]
}
