/*
Package domain holds the core types of the BakeTalks conversation: the Stage
enum, the per-session ConversationState, the persisted Order record, and the
Result/SideEffect pair the dialogue engine emits for every incoming message.

It has no dependencies so every adapter and the engine can share it freely.
*/
package domain
