package visitor

// Visitor calls the callback for each (key, element) pair until it returns false or an error
type Visitor[K comparable, E any] func(func(key K, element E) (bool, error)) error
