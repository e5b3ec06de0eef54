package reconcile

// Composer joins a row's domain and a column's extension into the
// fully-qualified name handed to the probe. The table adapter owns the naming
// convention; the engine calls the composer once per unresolved cell.
type Composer func(domain, extension string) string

// Concat is the plain composer: extensions already carry their separator.
func Concat(domain, extension string) string {
	return domain + extension
}
