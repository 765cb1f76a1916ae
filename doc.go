/*
Package dlis decodes DLIS (RP66 V1) files: the binary log-interchange format
used for subsurface-measurement archives.

We implement:

1. Byte-level primitive decoders for all of RP66 V1's representation codes
(FSHORT, FSINGL, UVARI, IDENT, OBNAME, ...), working over an immutable
Cursor value.

2. A framing layer that parses the Storage Unit Label, Visible Record
Labels, and Logical Record Segment Headers, and hides visible-record /
segment boundaries from callers reading a logical record's body.

3. A record indexer that walks a file producing Bookmarks — stable reopen
points, one per logical record — without materialising record payloads.

4. A record materialiser that concatenates a logical record's segments into
one contiguous buffer, stripping per-segment padding/checksum/trailing-length
suffixes.

5. An EFLR (Explicitly Formatted Logical Record) decoder that interprets a
materialised record as a column Template plus a sequence of Object rows,
with per-cell overrides and absent-attribute markers.

# Technical Details

**Framing.**
A file is an 80-byte Storage Unit Label followed by a sequence of Visible
Records. Each Visible Record is a 4-byte label followed by one or more
Logical Record Segments; segments chain into logical records via
has_predecessor/has_successor flags and may straddle visible-record
boundaries.

**Bookmarks.**
A Bookmark is (file_position, residual, is_explicit): the file offset of a
logical record's first segment, the number of bytes left in the enclosing
visible record at that point, and whether the record used explicit
formatting. Bookmarks are plain values, safe to store and reopen against an
unchanged file.

**EFLR row overlay.**
An object's row starts as a clone of the template row. ABSATR descriptors
collapse a cell to an absent value; ATTRIB descriptors overwrite whichever
of count/reprc/units/value the descriptor's format bits name, using the
cell's already-overridden count/reprc to decode its own value array.

**Encrypted records.**
Record returns an encrypted segment's raw ciphertext as-is; Eflr refuses to
decode a Bookmark whose IsEncrypted flag is set, rather than feeding
ciphertext to the set-header parser.

**Error kinds.**
Four kinds cover every failure: KindIO (OS-level read/seek failure),
KindEOF (fewer bytes available than a header declared), KindParse
(structural violation, e.g. a bad representation code or an out-of-range
length prefix), and KindClosed (operation on a closed File).
*/
package dlis
