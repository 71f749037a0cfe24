// Package knn predicts a bicycle frame size from body measurements with the
// k-nearest-neighbours rule, and generates the synthetic cyclist dataset the
// exercise uses.
//
// Prediction measures Euclidean distance over height, leg length and arm
// length, sorts the dataset stably by that distance and takes a majority
// vote among the k closest samples. A tied vote goes to the smallest size.
//
// BestK scores every k by leave-one-out cross-validation.
package knn
