/*Package anchor holds the per-alignment records of a chimeric read: MEAnchor
  for alignments to a mobile element reference, ChrAnchor for alignments to
  the chromosomal reference.

  MEAnchor.Tag decides, from the alignment boundaries, the element size and
  the strand, whether the clipped part of the read points out of the
  element's 5' edge (Upstream), its 3' edge (Downstream) or neither (None).
  Boundaries are 1-based and include clipped bases, so a read overhanging
  the element start has a left boundary <= 0.
*/
package anchor
