// 31 July 2020

/*
Randseq is for making random sequences for testing the readers.
Usage:
	randseq [options] fname nseq length
will generate nseq aligned sequences of length length and write them to fname
as fasta.

Flags:
	-g
		no gaps in the output sequences
	-r
		random number seed
	-p
		prefix for sequence names

We are most interested in benchmarking and parsing, so the content is not so important.
The only question that comes up is white space and gaps.
Whitespace should generally be unpredictable, so we generate funny cases,
with spaces and line breaks at random places in the sequences.
There is a flag (-g) which tells us whether we have gaps.

For tidy output in other formats, use "msaconv random".
*/
package main
