// Package kmeans clusters points with Lloyd's k-means algorithm and applies
// the result to colour quantization of images.
//
// What:
//
//   - Fit runs k-means `tries` times from random centroids and keeps the run
//     with the lowest total variation (sum of squared distances from every
//     point to its nearest centroid).
//   - Elbow fits a range of k and reports the variation of each, which is
//     what the "elbow" plot of the quantization exercise shows.
//   - Pixels turns an image into RGB points; Quantize repaints an image with
//     the nearest centroid colour.
//
// Determinism:
//
//	Restarts run concurrently (errgroup, WithWorkers), but each one draws
//	from its own stream derived from the seed and the try index, and the
//	winner is chosen after all of them finish (ties go to the lowest try).
//	The result is therefore independent of scheduling and worker count.
//
// Edge cases:
//
//   - A cluster that loses all its points keeps its previous centroid.
//   - k may exceed the number of points; extra clusters stay empty.
//
// Complexity: O(tries × iterations × n × k × d).
package kmeans
