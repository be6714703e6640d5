/*
Package datrie implements an immutable double-array trie dictionary in pure Go. It maps
a fixed set of string keys to dense identifiers, answers exact membership and
common-prefix queries, and stores one value per identifier. An index is built once and
is then safe for any number of concurrent readers.
*/
package datrie
