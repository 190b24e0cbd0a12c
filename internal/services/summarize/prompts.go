package summarize

// Section prompts. These went through several rounds of tuning against real
// episodes; edit with care and bump promptVersion when the output format
// changes.
const promptVersion = "3.4"

const executiveSummaryPrompt = `Write a concise, scannable executive summary.

CRITICAL INSTRUCTIONS FOR ACCURACY:
- Summarize only what was ACTUALLY discussed in the conversation
- Do NOT add information, interpretations, or conclusions not present in the transcript
- Stick to the facts and main points from the conversation

FORMATTING REQUIREMENTS:
Start with episode identification, then use a structured format that's easy to scan:

Episode: [Podcast Name - Episode Title]
Host: [Name]
Date: [Date]

Overview: A 2-3 sentence overview of what this episode covers and why it matters.

Key Discussion Points:
• Main point 1 with brief context
• Main point 2 with brief context
• Main point 3 with brief context
(Include 3-6 bullet points covering the core topics discussed)`

const keyThemesPrompt = `Identify 5-10 key themes or topics discussed in this episode.

CRITICAL INSTRUCTIONS FOR ACCURACY:
- Only identify themes that are ACTUALLY discussed in the transcript
- Base your themes on what was EXPLICITLY said, not on assumptions
- Use specific examples or quotes from the conversation to support each theme
- Do NOT invent themes that sound related but weren't actually discussed

FORMATTING REQUIREMENTS:
- PLAIN TEXT ONLY - No asterisks, no markdown, no bold markers
- Number each theme (1., 2., 3., etc.)
- Add a blank line between each theme for readability
- Format as: Number. Theme Title — Brief explanation

Example format:
1. Vision-Based Selling — Explanation of the theme with context from the conversation.

2. Enterprise Sales Strategy — Explanation with specific examples.`

const notableQuotesPrompt = `Extract 5-15 of the most insightful, memorable, or impactful quotes.

CRITICAL INSTRUCTIONS FOR ACCURACY:
- Extract ONLY quotes that appear VERBATIM in the transcript
- Before including a quote, internally confirm it's an EXACT substring of the transcript
- Do NOT paraphrase, summarize, or modify the quotes in any way
- Include COMPLETE thoughts - don't truncate mid-sentence or use small snippets
- Quotes should be 1-4 sentences long (not just fragments or phrases)

QUALITY FILTER - Every quote must score high (0-5 scale):
For each candidate quote, internally score it on:
- Specificity (0-5): Does it contain concrete examples, numbers, named entities, or frameworks?
- Actionability (0-5): Does it tell how to do/decide something?
- Novelty/Insight (0-5): Is it non-obvious or counterintuitive?

Only include quotes where the average score is ≥ 4.

DO NOT include quotes that are:
- Generic platitudes without examples
- Pure praise or name-dropping without insight
- Simple factual statements or introductions
- Unanswered questions, transitions, or filler

FORMATTING REQUIREMENTS:
- PLAIN TEXT ONLY - No asterisks, no markdown, no bold markers
- Number each quote (1., 2., 3., etc.)
- Add a blank line between each quote for readability
- Format as: Number. "Quote text" — Context explanation (when needed)`

const actionableInsightsPrompt = `Extract 5-10 actionable takeaways or insights that a listener could implement in their life.

CRITICAL INSTRUCTIONS FOR ACCURACY:
- Only extract insights that are EXPLICITLY mentioned or clearly implied in the transcript
- Do NOT invent, embellish, or add your own interpretations
- Do NOT create numbered steps unless the podcast EXPLICITLY outlined those steps
- If a specific technique, phrase, or practice is mentioned, quote it EXACTLY as said

FORMATTING REQUIREMENTS:
- PLAIN TEXT ONLY - No asterisks, no markdown, no bold markers
- Number each insight (1., 2., 3., etc.)
- Add a blank line between each insight for readability
- Format as: Number. Title — Explanation in a single paragraph

Focus on insights that fall into these categories:
1. Behaviors & Routines
2. Mindset Shifts
3. Specific Actions
4. Communication Skills
5. Decision-Making Frameworks
6. Relationship Practices
7. Self-Awareness Techniques
8. Emotional Regulation
9. Productivity Systems
10. Learning Methods`

const mergePrompt = `You are given several partial analyses of consecutive parts of one podcast episode. Merge them into a single coherent result that follows the SAME formatting rules as the parts. Deduplicate overlapping items, keep the strongest material, and renumber cleanly. Do not invent content that is not present in the parts.`
