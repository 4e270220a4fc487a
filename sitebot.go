// Package sitebot provides a website-content question-answering bot.
// It scrapes a configured set of web pages, splits their text into
// chunks, indexes the chunks with a sparse lexical representation, and
// at query time retrieves the most relevant chunks to assemble a
// templated answer.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, sqlite/), with role packages for the corpus, index, and
// response generation (corpus/, tfidf/, chat/).
package sitebot
