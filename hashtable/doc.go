// Package hashtable implements a chaining hash table with dynamic
// capacity doubling, keyed by strings and generic over value types.
//
// What
//
//   - Table[V]: Insert / Get / Delete / Contains with bucket placement by
//     xxhash.Sum64String(key) % capacity and linear scans within a bucket.
//   - Collisions are resolved by chaining: each bucket is a growable
//     slice of key/value entries; keys within a bucket are unique.
//   - Re-inserting an existing key overwrites its value in place without
//     growing the table.
//
// Resizing
//
//	Immediately after an insert that pushes size/capacity above the load
//	factor threshold, capacity doubles and every existing entry is
//	rehashed into a freshly allocated bucket array (full rehash, not
//	incremental). Get and Delete never trigger a resize, so the invariant
//	"load factor <= threshold after every insert" holds at all times.
//
// The hash is deterministic and assumed uniform-enough for teaching use;
// it is not adversarially safe.
//
// Options
//
//   - WithCapacity(n)    initial bucket count (default 16, must be > 0).
//   - WithLoadFactor(f)  resize threshold (default 0.75, must be in (0, 1]).
//
// Errors
//
//   - ErrOptionViolation  invalid option supplied to New.
//
// Lookups of absent keys return a false/zero result, never an error.
//
// Complexity (n = entries, b = bucket length)
//
//   - Insert/Get/Delete: O(b) expected O(1); resize O(n) amortized rarely
package hashtable
