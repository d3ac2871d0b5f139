// Package settings holds the process-wide configuration of a restviews site
// and the logic that folds component defaults into it.
//
// A configuration is a [Tree]: a string-keyed mapping whose values are either
// scalars or nested trees. Two stores make up a [Site]:
//   - the live store, which the running application reads;
//   - the [Defaults] registry, which records the last default seen per key.
//
// Components ship optional defaults that an [Injector] resolves through a
// [Resolver] and merges with [Merge]. Live values always win over component
// defaults; defaults only fill the gaps.
//
// Only setting names take part in injection: identifiers whose cased
// characters are all upper-case, such as RESTVIEWS_KNOCKOUT_URL.
package settings
