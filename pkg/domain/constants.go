package domain

// IndexChapterID is the reserved ID of the table-of-contents chapter.
const IndexChapterID = "index"

// ChapterExt is the file extension chapter loaders look for.
const ChapterExt = ".md"
