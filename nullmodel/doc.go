// Package nullmodel computes code lengths of graphs under the null models
// used for motif scoring.
//
// ER (simple random graph): a graph of n nodes and m links costs
// log2 C(t, m) bits, t = n(n-1) directed or n(n-1)/2 undirected, plus a
// universal code for n and m when the size itself must be sent.
//
// Edge list (degree sequence): the graph is one of the link lists
// compatible with its degree sequence:
//
//	undirected: log2((2m)!) - Σ log2(d_i!) - log2(m!) - m
//	directed:   log2(m!) - Σ log2(in_i!) - Σ log2(out_i!)
//
// plus a prior on the degree sequence (PriorML or PriorComplete).
//
// Beta (uniform over simple graphs with the degree sequence): the number of
// such graphs is estimated by sequential importance sampling. Each sample is
// an unbiased estimate of the count (reported as log2); LogNormalCI turns a
// batch of samples into a one-sided confidence bound.
package nullmodel
