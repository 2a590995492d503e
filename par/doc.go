/*
Package par turns strided n-dimensional views into recursively splittable
units of parallel work.

Three producer kinds cover the three iteration contracts:

  - [Elements]: every element of one view, unordered. The relaxed order
    lets every split bisect the best-balanced dimension.
  - [AxisOf]: one sub-view per index along a fixed axis, in index order
    and with exact length, for consumers that place results positionally.
  - [NewZip2] / [NewZip3]: lock-step tuples across equally shaped views,
    split simultaneously and identically so alignment survives splitting.

A producer holds nothing but view descriptors. Splitting bisects exactly
one dimension into two half-open ranges, so the two halves cover disjoint
index sets whose union is the parent's index set; that disjointness holds
transitively through arbitrarily deep splitting and is what makes
concurrent mutation through exclusive sub-views safe without locks.

Drivers consume producers through Len, Split, and Items; package
grid/exec provides parallel and single-threaded reference drivers.

Shape mismatches and invalid axes are rejected at construction. After
construction, splitting and traversal cannot fail; calling Split on a
leaf is a precondition violation and panics.
*/
package par
