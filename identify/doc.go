// Package identify runs the interactive identification loop: two models, one
// sequence sampled from each, and a prompt that asks which sequence to
// attribute to a model by comparing likelihoods.
package identify
