/*
Package ports defines the driven ports (interfaces) for the BakeTalks engine.

These interfaces decouple the dialogue logic from external implementations:

  - SessionStore: persists per-session ConversationState (memory, Redis).
  - OrderStore: persists confirmed orders (memory, Postgres).
  - SpeechRenderer: renders response text to a fetchable audio resource.
  - FuzzyMatcher: approximate string similarity for free-form input.

The package also ships a SessionStore contract suite so every adapter proves
the same observable behavior.
*/
package ports
