// 14 Oct 2026

/*
Msaconv reads, checks and converts multiple sequence alignments.

Formats are aligned fasta, Clustal, Stockholm and MSF. On input, the
format is recognised from the contents. On output, it comes from --to
or the file extension (.fa .afa .aln .sto .msf and friends).

Usage:
	msaconv detect file...
	msaconv convert [--from fmt] [--to fmt] in out
	msaconv info in
	msaconv squash --ref name in out
	msaconv render in out.png
	msaconv random [-n nseq] [-l len] [-s seed] out

A file name of "-" means standard input or output.

Global flags:
	-w, --width n
		residues per line. 0 means the format's usual width.
	--desc
		write descriptions in fasta and Stockholm output
	--consensus
		write conservation lines under Clustal blocks
	--alphabet any|dna|rna|protein
		residues allowed on input. Gaps (- . ~) are always allowed.
	--config file
		settings file. By default, msaconv.yaml in the current
		directory is read if it is there.
	-v, --verbose, --log-level level
		how much to log on stderr

Every setting can also come from the environment, as in
MSACONV_WRAP_WIDTH=80 or MSACONV_RENDER_CELL=8.
The command line wins over the environment, which wins over the
settings file.

Squash removes every column where the reference sequence has a gap.
The reference is a sequence name or its number, counting from 1.
*/
package main
