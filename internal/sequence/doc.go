/*
Package sequence infers a generating model from the leading terms of an
integer sequence and uses it to materialize the terms up to a bound.

Two models exist and they are tried in a fixed order:

  - Affine, a progression a*i + b fitted locally from the prefix.
  - Candidate, the data of a record returned by an external sequence
    Database such as the OEIS, continued from the point where the prefix
    appears in it.

The Database is only consulted when no affine progression fits. Bounds are
always exclusive; callers fold inclusive notation into the bound before
calling Generate.
*/
package sequence
