// Package fifo provides a wait-free single-producer/single-consumer sample
// ring for handing audio from the render thread to an analysis thread.
//
// The producer calls [Ring.Push] and the consumer calls [Ring.Pull]; neither
// blocks, locks or allocates. When the ring is full the producer keeps the
// samples already queued and drops the part of the new block that does not
// fit. Consumers that only care about the most recent window simply pull
// often enough to keep up.
package fifo
